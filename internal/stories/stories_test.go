package stories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laststance/plume/internal/catalog"
	"github.com/laststance/plume/internal/logger"
	"github.com/laststance/plume/internal/ui/components"
	"github.com/laststance/plume/internal/uistate"
)

func TestBuiltinRegistryIsPopulated(t *testing.T) {
	reg := Builtin()

	assert.Greater(t, reg.Len(), 15)
	for _, component := range []string{"text", "card", "button", "badge", "alert", "toast", "modal", "navlist", "input", "spinner"} {
		assert.Contains(t, reg.Components(), component)
	}
}

func TestAllBuiltinStoriesPass(t *testing.T) {
	results := catalog.NewRunner(logger.Discard()).Run(Builtin())

	for _, result := range catalog.Failures(results) {
		t.Errorf("story %s under theme %s failed: %v", result.Story.ID(), result.Theme, result.Err)
	}
}

func TestToastLifecycleStoryScript(t *testing.T) {
	story, ok := Builtin().Get("toast", "lifecycle")
	require.True(t, ok)

	ctx := components.DefaultContext()
	out, err := catalog.RunScript(story.Model(ctx), story.Script)
	require.NoError(t, err)
	assert.Contains(t, out, "toasts: 0")
}

func TestToneForSeverity(t *testing.T) {
	cases := map[uistate.Severity]components.Tone{
		uistate.SeverityInfo:    components.ToneInfo,
		uistate.SeveritySuccess: components.ToneSuccess,
		uistate.SeverityWarning: components.ToneWarning,
		uistate.SeverityError:   components.ToneError,
		uistate.Severity("odd"): components.ToneInfo,
	}
	for severity, tone := range cases {
		assert.Equal(t, tone, toneForSeverity(severity))
	}
}
