// Package logtail reads the tail of WildWave's own log file for the in-app
// log overlay.
//
// Read seeks backwards from the end of the file in fixed-size chunks until it
// has seen enough line breaks, so opening the overlay costs the same on a
// fresh log and on one that has grown for months. Level pulls the slog level
// out of a text-handler line so the overlay can color it.
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//	if err != nil {
//		return err
//	}
package logtail
