// Package duration converts human-readable durations between their common
// representations.
//
// Four input shapes are accepted, modelled as the sealed Value type:
//
//   - Text: a clock string, "H:MM:SS" or "MM:SS"
//   - Seconds: a whole number of seconds
//   - Elapsed: a time.Duration
//   - Tuple: exactly three integers, (hours, minutes, seconds)
//
// Every input is reduced to the same intermediate form and can be rendered as
// total seconds, a carry-normalized Triple, a time.Duration or an ISO 8601
// duration string.
//
//	secs, err := duration.ToSeconds(duration.Text("1:23:45")) // 5025
//	iso, err := duration.ToISO8601(duration.Seconds(89961))   // "P1DT00H59M21S"
//
// # Strict Mode
//
// With Config.Strict set (the default), clock fields must be within their
// natural range: hours 0-23, minutes and seconds 0-59. In relaxed mode the
// fields pass through unchanged and are carried into the next unit when a
// normalized result is produced, so "61:29" becomes 1h01m29s.
//
// # Errors
//
// All failures are *Error values. errors.Is(err, ErrInvalidDuration) holds
// for every failure; the per-kind sentinels (ErrFormat, ErrStrictness, ...)
// select a single kind.
//
// # ISO 8601 Output
//
// The rendered string always has a time part and always carries seconds.
// Days are emitted only when non-zero, and a larger unit forces all smaller
// ones to be shown:
//
//	25        -> PT25S
//	227       -> PT03M47S
//	89961     -> P1DT00H59M21S
//	1.5 (Elapsed, ForceInt off) -> PT01.5S
//
// Trailing zeros are trimmed from fractional seconds only; whole seconds keep
// their two digits ("PT01M50S").
package duration
