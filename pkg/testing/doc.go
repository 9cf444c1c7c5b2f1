// Package testing provides an in-process fake of the hosting API for use
// in Go tests.
//
// The fake keeps real state: settings writes land in its settings map, task
// creates append to its task list, and restart/stop move the reported server
// status. Every call is recorded for assertions.
//
// # Basic Usage
//
// Start a fake service and point a client at it:
//
//	func TestRestart(t *testing.T) {
//	    svc := nitradotest.NewService(t)
//	    client := svc.Client()
//
//	    if _, err := client.Restart(context.Background(), "1234567"); err != nil {
//	        t.Fatal(err)
//	    }
//	    if svc.Status() != nitrado.StatusRestarting {
//	        t.Errorf("status = %q", svc.Status())
//	    }
//	}
//
// The package name collides with the standard library's testing package, so
// import it under an alias:
//
//	import nitradotest "github.com/donmatraca/nitrado-go/pkg/testing"
//
// # State
//
// Seed and inspect service state directly:
//
//	svc.SetStatus(nitrado.StatusStopped)
//	svc.SetSetting("general", "whitelist", "SurvivorA\rSurvivorB")
//	svc.SetFTP(nitrado.FTPCredentials{}) // make credential lookups fail
//
//	got := svc.Setting("general", "bans")
//	tasks := svc.Tasks()
//
// # Assertions
//
// Verify the calls your code made:
//
//	if !svc.Received("POST", "/services/1234567/gameservers/restart") {
//	    t.Error("restart was never requested")
//	}
//	if svc.RequestCount() != 0 {
//	    t.Error("validation should fail before any request")
//	}
package testing
