// Package ui contains the Bubble Tea program that drives the book catalog.
// The Model type focuses on message orchestration while dedicated helpers own
// navigation, input routing, rendering, and action execution.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, action results).
//   - Key presses go to the active screen: the main menu, a number or text
//     editor from internal/ui/widget, the file picker from internal/ui/picker,
//     a notice that waits for Enter, or the scrollable book table.
//   - Multi-step actions such as book entry keep a draft on the model and only
//     write to the catalog once every field has been committed.
//
// State ownership:
//   - The catalog.Store is owned by the model and only touched from Update.
//   - Catalog and file operations run through internal/ui/command, which
//     executes the handler synchronously and hands back a command carrying the
//     menu.ActionResult so the outcome re-enters Update as a message.
package ui
