// Package xposedornot provides a Go client SDK for XposedOrNot,
// a free data breach search and notification service.
//
// The SDK checks email addresses and passwords against known breaches,
// lists the public breach catalog, and builds per-address exposure
// analytics. Password checks use k-anonymity: only a short hash prefix
// ever leaves the process.
//
// Basic usage:
//
//	client, err := xposedornot.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	exposure, err := client.CheckEmail(ctx, "user@example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if exposure.Breached {
//	    fmt.Println("found in:", exposure.Breaches)
//	}
//
// All lookups normalize "nothing found" into a clean result rather than
// an error; errors mean the question could not be answered. Every SDK
// error implements [Error] and categorizes itself with an [ErrorCode],
// and the usual sentinels work with errors.Is:
//
//	if errors.Is(err, xposedornot.ErrRateLimited) {
//	    // back off
//	}
package xposedornot
