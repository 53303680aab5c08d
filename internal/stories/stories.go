// Package stories defines the built-in catalog: one story per component
// scenario the kit ships. The gallery browses these, `plume stories run`
// executes them headlessly, and the package tests keep them honest.
package stories

import (
	"github.com/laststance/plume/internal/catalog"
	"github.com/laststance/plume/internal/ui/components"
)

// Builtin returns a registry populated with every built-in story.
func Builtin() *catalog.Registry {
	reg := catalog.NewRegistry()
	reg.MustRegister(textStories()...)
	reg.MustRegister(layoutStories()...)
	reg.MustRegister(buttonStories()...)
	reg.MustRegister(badgeStories()...)
	reg.MustRegister(avatarStories()...)
	reg.MustRegister(alertStories()...)
	reg.MustRegister(toastStories()...)
	reg.MustRegister(modalStories()...)
	reg.MustRegister(navStories()...)
	reg.MustRegister(inputStories()...)
	reg.MustRegister(spinnerStories()...)
	return reg
}

func textStories() []catalog.Story {
	return []catalog.Story{
		{
			Component: "text",
			Scenario:  "default",
			Render: func(ctx components.RenderContext) string {
				return components.NewText("The quick brown fox").ViewWithContext(ctx)
			},
		},
		{
			Component: "text",
			Scenario:  "variants",
			Render: func(ctx components.RenderContext) string {
				return components.VStack(
					components.TitleText("Title"),
					components.BoldText("Bold"),
					components.CaptionText("Caption"),
					components.CodeText("fmt.Println(\"code\")"),
				).ViewWithContext(ctx)
			},
		},
		{
			Component: "header",
			Scenario:  "with-subtitle",
			Render: func(ctx components.RenderContext) string {
				return components.NewHeader("Dashboard").
					WithSubtitle("Everything at a glance").
					ViewWithContext(ctx)
			},
		},
		{
			Component: "divider",
			Scenario:  "styles",
			Render: func(ctx components.RenderContext) string {
				return components.VStack(
					components.NewDivider().WithWidth(24),
					components.DashedDivider().WithWidth(24),
					components.ThickDivider().WithWidth(24),
				).ViewWithContext(ctx)
			},
		},
	}
}

func layoutStories() []catalog.Story {
	return []catalog.Story{
		{
			Component: "stack",
			Scenario:  "horizontal-gap",
			Render: func(ctx components.RenderContext) string {
				return components.HStack(
					components.NewBadge("one"),
					components.NewBadge("two"),
					components.NewBadge("three"),
				).WithGap(2).ViewWithContext(ctx)
			},
		},
		{
			Component: "card",
			Scenario:  "titled-with-footer",
			Render: func(ctx components.RenderContext) string {
				return components.NewCard(
					components.NewText("Card body content"),
				).WithTitle("Status").
					WithFooter(components.CaptionText("updated just now")).
					ViewWithContext(ctx)
			},
		},
		{
			Component: "panel",
			Scenario:  "titled",
			Render: func(ctx components.RenderContext) string {
				return components.NewPanel(
					components.NewText("Section content"),
				).WithTitle("Settings").ViewWithContext(ctx)
			},
		},
	}
}

func buttonStories() []catalog.Story {
	return []catalog.Story{
		{
			Component: "button",
			Scenario:  "tones",
			Render: func(ctx components.RenderContext) string {
				return components.HStack(
					components.NewButton("Default"),
					components.PrimaryButton("Primary"),
					components.DangerButton("Delete"),
				).WithGap(1).ViewWithContext(ctx)
			},
		},
		{
			Component: "button",
			Scenario:  "focused",
			Render: func(ctx components.RenderContext) string {
				return components.PrimaryButton("Post").WithFocused(true).ViewWithContext(ctx)
			},
		},
		{
			Component: "button",
			Scenario:  "disabled",
			Render: func(ctx components.RenderContext) string {
				return components.PrimaryButton("Post").WithDisabled(true).ViewWithContext(ctx)
			},
		},
	}
}

func badgeStories() []catalog.Story {
	return []catalog.Story{
		{
			Component: "badge",
			Scenario:  "tones",
			Render: func(ctx components.RenderContext) string {
				return components.HStack(
					components.NewBadge("v1.0.0"),
					components.SuccessBadge("active"),
					components.WarningBadge("beta"),
					components.ErrorBadge("deprecated"),
				).WithGap(1).ViewWithContext(ctx)
			},
		},
	}
}

func avatarStories() []catalog.Story {
	return []catalog.Story{
		{
			Component: "avatar",
			Scenario:  "initials",
			Render: func(ctx components.RenderContext) string {
				return components.HStack(
					components.NewAvatar("Ada Lovelace"),
					components.NewAvatar("grace"),
					components.NewAvatar("").WithTone(components.ToneSecondary),
				).WithGap(1).ViewWithContext(ctx)
			},
		},
	}
}

func alertStories() []catalog.Story {
	return []catalog.Story{
		{
			Component: "alert",
			Scenario:  "tones",
			Render: func(ctx components.RenderContext) string {
				return components.VStack(
					components.SuccessAlert("Profile saved"),
					components.WarningAlert("Draft not saved"),
					components.ErrorAlert("Could not reach server"),
					components.NewAlert("New followers this week: 3"),
				).WithGap(1).ViewWithContext(ctx)
			},
		},
	}
}

func toastStories() []catalog.Story {
	return []catalog.Story{
		{
			Component: "toast",
			Scenario:  "stack",
			Render: func(ctx components.RenderContext) string {
				return components.ToastStack(
					components.NewToastView("Post published", components.ToneSuccess),
					components.NewToastView("Connection lost", components.ToneError),
					components.NewToastView("3 new mentions", components.ToneInfo),
				).ViewWithContext(ctx)
			},
		},
		{
			Component: "toast",
			Scenario:  "lifecycle",
			Model:     newToastQueueModel,
			Script: []catalog.Step{
				{Expect: "toasts: 0"},
				{Press: "s", Expect: "Saved"},
				{Press: "s"},
				{Press: "s", Expect: "toasts: 3"},
				{Press: "d", Expect: "toasts: 2"},
				{Press: "c", Expect: "toasts: 0", Reject: "Saved"},
			},
		},
	}
}

func modalStories() []catalog.Story {
	return []catalog.Story{
		{
			Component: "modal",
			Scenario:  "compose",
			Render: func(ctx components.RenderContext) string {
				body := components.VStack(
					components.NewText("What's happening?"),
					components.NewDivider().WithWidth(40),
				)
				return components.NewModal("Compose", body).
					WithHint("enter to post · esc to cancel").
					ViewWithContext(ctx)
			},
		},
		{
			Component: "modal",
			Scenario:  "confirm",
			Render: func(ctx components.RenderContext) string {
				body := components.HStack(
					components.DangerButton("Delete"),
					components.NewButton("Cancel"),
				).WithGap(2)
				return components.NewModal("Delete post?", body).
					WithWidth(36).
					ViewWithContext(ctx)
			},
		},
	}
}

func navStories() []catalog.Story {
	items := []components.NavItem{
		{Icon: "⌂", Label: "Home"},
		{Icon: "@", Label: "Mentions"},
		{Icon: "☆", Label: "Bookmarks"},
		{Icon: "⚙", Label: "Settings"},
	}
	return []catalog.Story{
		{
			Component: "navlist",
			Scenario:  "expanded",
			Render: func(ctx components.RenderContext) string {
				return components.NewNavList(items...).WithSelected(1).ViewWithContext(ctx)
			},
		},
		{
			Component: "navlist",
			Scenario:  "collapsed",
			Render: func(ctx components.RenderContext) string {
				return components.NewNavList(items...).WithCollapsed(true).ViewWithContext(ctx)
			},
		},
	}
}

func inputStories() []catalog.Story {
	return []catalog.Story{
		{
			Component: "input",
			Scenario:  "placeholder",
			Render: func(ctx components.RenderContext) string {
				return components.NewInput("What's happening?").ViewWithContext(ctx)
			},
		},
		{
			Component: "input",
			Scenario:  "typing",
			Model:     newInputModel,
			Script: []catalog.Step{
				{Type: "hello plume", Expect: "hello plume"},
				{Press: "backspace", Reject: "plume"},
			},
		},
	}
}

func spinnerStories() []catalog.Story {
	return []catalog.Story{
		{
			Component: "spinner",
			Scenario:  "labelled",
			Render: func(ctx components.RenderContext) string {
				return components.NewSpinner("loading timeline").ViewWithContext(ctx)
			},
		},
	}
}
