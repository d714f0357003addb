// Package testutil provides shared test utilities for onboard.
//
// # Fixtures
//
// The fixtures.go file provides sample data:
//
//   - ProgressEmpty(), ProgressPartial(), ProgressComplete() - progress records
//   - OrientationIDs - the three orientation step ids
//   - SampleConfigFile, SampleConfigSQLite - config.yaml bodies
//
// # Environment Helpers
//
// The env.go file sets up on-disk test state:
//
//   - SetupTestDir(t, backend) - temp base directory with .onboard/config.yaml
//   - OpenTestStore(t, dir) - opens the configured store, closed on cleanup
//   - SeedProgress(t, dir, p) - writes a progress record through the backend
//   - WriteTestFile(t, base, path, content) - writes a file in the test dir
//
// # Assertions
//
//   - AssertCompleted(t, p, ids...), AssertNotCompleted(t, p, ids...)
//   - AssertCurrentStep(t, p, id)
//   - AssertPersisted(t, dir, fn) - reloads progress from disk and checks it
//
// # Timeouts
//
//   - ContextWithTestDeadline(t, fallback) - context bounded by the test deadline
//   - Receive(t, ch, timeout) - receives one value or fails the test
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    dir := testutil.SetupTestDir(t, config.BackendFile)
//	    testutil.SeedProgress(t, dir, testutil.ProgressPartial())
//	    // ... run test ...
//	    testutil.AssertPersisted(t, dir, func(p progress.Progress) {
//	        testutil.AssertCompleted(t, p, "sdk_install")
//	    })
//	}
package testutil
