// Package expectorate compares multi-line output to data stored in version-controlled files. It makes it easy to update the stored contents when they should change to match new
// results.
//
// Use it from a test:
//
//	func TestCompose(t *testing.T) {
//		actual := compose()
//		expectorate.AssertContents(t, "testdata/lyrics.txt", actual)
//	}
//
// If the output doesn't match, the test fails and prints the line diff, color-coded when stdout is an interactive terminal. To accept the changes from compose, run the tests with
// EXPECTORATE=overwrite. Assuming lyrics.txt is checked in, git diff will then show something like this:
//
//	--- a/testdata/lyrics.txt
//	+++ b/testdata/lyrics.txt
//	@@ -1,5 +1,2 @@
//	-No one hits like Gaston
//	-Matches wits like Gaston
//	-In a spitting match nobody spits like Gaston
//	+In a testing match nobody tests like Gaston
//	 I'm especially good at expectorating
//	-Ten points for Gaston
//
// For assertion styles that want a boolean check instead of an immediate test failure, EqFile returns a predicate whose Eval method performs the same comparison.
package expectorate
