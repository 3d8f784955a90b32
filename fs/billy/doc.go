// Package billy provides go-billy backed filesystems used as the existence
// oracle for tool resolution and target validation.
//
// LocalFS wraps osfs and accepts absolute host paths, including Windows
// paths on any drive letter. MemoryFS wraps memfs and is meant for tests and
// dry runs.
//
//	fs := billy.NewLocal()
//	ok, err := fs.FileExists(`C:\Program Files (x86)\Microsoft SDKs\Windows\v10.0A\bin\NETFX 4.0 Tools\sn.exe`)
//
//	mem := billy.NewMemory()
//	_ = mem.WriteFile("/sdk/sn.exe", nil, 0o755)
//
// Both types are safe for concurrent use.
package billy
