// Package findclone finds duplicate files under a directory tree.
//
// Files are filtered in three stages of increasing cost. Files are first grouped by
// exact size; every file sharing its size with another is then hashed and grouped by
// digest; finally every pair inside a digest group is compared byte for byte, and only
// pairs that really are identical are reported. A digest match is a candidate filter,
// never proof of identity.
//
// # Core API
//
//	reporter, _ := findclone.NewReporter(findclone.FormatHuman, os.Stdout)
//	summary, err := findclone.NewFinder(reporter, findclone.DefaultOptions()).Run(ctx, "/path/to/dir")
//
// FindDuplicates returns the pairs instead of printing them, and GroupPairs folds them
// into sets of identical files.
//
// # Configuration
//
// Options can be built from an ini file with LoadConfig and Config.Options. The
// environment variables FINDCLONE_CONFIG, FINDCLONE_OVERRIDES and FINDCLONE_DEBUG are
// read by LoadFromEnvironment.
package findclone
