// Package exec provides a testable interface for running external processes.
//
// It wraps os/exec behind the Executor interface so callers can swap in a
// mock (see exec/mocks) while production code uses the concrete *Command.
// Output is captured per stream and combined, and can optionally be streamed
// to the caller's writers at the same time.
//
// # Basic Usage
//
//	exec := exec.New()
//	result, err := exec.Run("echo", "hello world")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Stdout) // "hello world\n"
//
// # Configuration
//
// Options passed to New are global; the fluent With* methods apply to the
// next Run only and are reset afterwards:
//
//	exec := exec.New(exec.WithInheritEnv())
//	result, err := exec.
//		WithDir(`C:\build`).
//		WithTimeout(time.Minute).
//		Run("sn.exe", "-v", "Core.dll")
//
// # Command Wrappers
//
// A CommandWrapper binds an executor to a single program:
//
//	sn := exec.NewWrapper(exec.New(), `C:\Program Files (x86)\...\sn.exe`)
//	result, err := sn.Run("-v", "Core.dll")
//
// # Verbatim Arguments
//
// Some Windows tools parse their own command line and expect paths wrapped in
// double quotes. WithVerbatimArgs hands pre-quoted tokens to the process as-is
// instead of escaping them a second time:
//
//	result, err := sn.WithVerbatimArgs().Run("-Rca", `"C:\build\Core.dll"`, "MyContainer")
//
// # Errors
//
// A process that fails to start or exits non-zero yields an *ExecError with
// the exit code and captured output. The Result is returned alongside it.
package exec
