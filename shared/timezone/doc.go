// Package timezone provides timezone utilities for the application.
//
// All timestamps in the system are stored and compared in a single
// application timezone, configured via the APP_TIMEZONE environment
// variable (UTC when unset). Course start times and card expiries in
// particular are always evaluated through this package so that the
// cancellation-window and expiry checks never mix naive and aware times.
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Parsing times in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// Use standard IANA timezone database names ("UTC", "Asia/Jakarta",
// "America/New_York") for reliable cross-platform compatibility.
package timezone
