// Package sn locates and runs the .NET strong-name tool, sn.exe.
//
// A Locator finds sn.exe by probing a list of Windows SDK install
// directories on disk and, when none of them holds the tool, by walking the
// SDK entries in the registry under
// HKLM\Software\Microsoft\Microsoft SDKs\Windows. The first path found is
// remembered for the lifetime of the Locator.
//
// An Invoker validates a request, builds the exact sn.exe command line and
// runs it:
//
//	inv, err := sn.New(billy.NewLocal(), platform.NewHost(), registry.NewSystem(), exec.New())
//	if err != nil {
//		return err
//	}
//	err = inv.Run(ctx, sn.OperationResign, "bin/Core.dll", &sn.Settings{Container: "MyKeys"})
//
// The command lines produced are
//
//	sn.exe -v  "<absolute path>"
//	sn.exe -vf "<absolute path>"
//	sn.exe -Rca "<absolute path>" <container>
//	sn.exe -k  "<absolute path>"
//
// Resign, Verify and CreateKey apply one operation to a list of files in
// order and stop at the first failure.
package sn
