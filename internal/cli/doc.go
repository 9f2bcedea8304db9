// Package cli provides the terminal user interface components for Linkr.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
// The package provides several UI components:
//   - Dashboard: the main project page hosting the repository list, the
//     token list and the commit feed
//   - AddRepo / AddToken: modal forms for registering new entries
//   - Confirm: destructive-action confirmation prompt
//   - Configure: configuration wizard with form navigation
//
// # Data flow
//
// The dashboard never mutates its lists in place. Every mutation is an
// async [tea.Cmd] against the backend; its completion message triggers a
// fresh load of the affected list, so the rendered state is always what
// the backend last returned. Token-list reloads are driven by an explicit
// invalidation message rather than a shared counter.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
