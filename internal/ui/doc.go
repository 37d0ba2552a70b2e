// Package ui implements the WildWave terminal interface on Bubble Tea.
//
// # Layout
//
//	┌ header: logo, session status, endpoint ─────────────┐
//	│ command bar: key hints, theme                       │
//	│                                                     │
//	│ ╭ upload zone ────────────────────────────────────╮ │
//	│ │ file name, type, size, length, sample rate      │ │
//	│ ╰─────────────────────────────────────────────────╯ │
//	│ [ Identify Species ] ⣾ Analysing ...                │
//	│ ✗ error toast                                       │
//	│ Results                                             │
//	│ ┃ #1 Robin                              92%  A      │
//	│ ┃ ██████████████████████████████████░░░░░           │
//	└─────────────────────────────────────────────────────┘
//
// Help, the file picker and the application log open as overlays.
//
// # Selecting files
//
// Press o to browse with a picker limited to audio extensions, or drop a
// file on the terminal. Terminals deliver a drop as a bracketed paste of the
// path, which audio.FromDrop normalises. Loads are numbered so that a slow
// probe never replaces a newer choice.
//
// # Uploads
//
// Every change goes through state.Store. A start effect schedules the
// detector call in a tea.Cmd with the context returned by Store.Begin, and
// the reply comes back as a message tagged with its request token. Replies
// for superseded tokens are dropped by the store.
//
// # Gauges
//
// Each result renders as a card with a bubbles/progress bar filled in the
// theme's tier color (success, warning, danger for tiers A, B, C). The bars
// spring to their value when results arrive. Cards keep server order.
//
// # Keys
//
//	enter/space  Identify species
//	o            Browse for audio
//	L            Application log
//	T            Cycle theme (saved to prefs)
//	h/?          Help
//	esc          Close overlay
//	e/ctrl+c     Quit
package ui
