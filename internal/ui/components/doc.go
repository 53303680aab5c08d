// Package components is a theme-aware terminal component kit built on
// lipgloss and bubbles.
//
// Components are thin wrappers: each one forwards its content to lipgloss (or
// to a bubbles widget for interactive elements) and contributes nothing beyond
// theme lookup and a fluent configuration surface. The kit has three layers:
//
//  1. Theme — immutable design tokens (Palette, SpacingScale, BorderSet,
//     TypographySet) with built-in light and dark variants.
//  2. Modifiers — StyleFunc values (Background, Foreground, Border, Padding,
//     Typography, …) that resolve theme tokens at render time.
//  3. Components — Text, Header, Divider, Spacer, Stack, Container, Card,
//     Panel, Button, Badge, Avatar, Alert, ToastView, Modal, NavList, plus
//     Input and Spinner wrapping their bubbles counterparts.
//
// Themes travel explicitly through RenderContext; there is no package-level
// theme state:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := components.NewCard(components.NewText("hello")).ViewWithContext(ctx)
//
// View() renders with DefaultContext for one-off use. Rendering is stateless:
// the same component and context always produce the same string, which is what
// the story catalog in internal/catalog relies on.
package components
