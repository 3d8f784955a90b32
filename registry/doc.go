// Package registry exposes a read-only view of the Windows registry.
//
// Registry and Key are the capabilities the tool locator needs: open a key,
// enumerate its children, read a string value, close it. System is backed by
// golang.org/x/sys/windows/registry on Windows and reports every key absent
// elsewhere. Memory is an in-memory implementation for tests.
//
//	reg := registry.NewSystem(registry.WithView(registry.View32))
//	key, ok, err := reg.OpenKey(registry.LocalMachine, `Software\Microsoft\Microsoft SDKs\Windows`)
//	if err != nil || !ok {
//		return
//	}
//	defer key.Close()
package registry
