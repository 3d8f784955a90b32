package sn

// Candidates is the set of SDK install layouts probed on disk. Every
// version is tried with every layout, versions first:
//
//	<ProgramFilesX86>\Microsoft SDKs\Windows\<version>\<layout>[\x64]\sn.exe
//
// The x64 segment is added on a 64-bit operating system.
type Candidates struct {
	// Versions are SDK version directories, newest first.
	Versions []string

	// Layouts are directories below a version holding sn.exe.
	Layouts []string
}

// DefaultCandidates returns the SDK versions that shipped sn.exe in a
// fixed location.
func DefaultCandidates() Candidates {
	return Candidates{
		Versions: []string{"v10.0A", "v8.1A", "v8.0A", "v7.1A", "v7.0A"},
		Layouts:  []string{`Bin\NETFX 4.0 Tools`, "Bin"},
	}
}

// Paths returns the candidate executable paths in probe order. It returns
// nil when programFilesX86 is empty.
func (c Candidates) Paths(programFilesX86 string, is64Bit bool) []string {
	if programFilesX86 == "" {
		return nil
	}

	paths := make([]string, 0, len(c.Versions)*len(c.Layouts))
	for _, version := range c.Versions {
		for _, layout := range c.Layouts {
			dir := joinWindows(programFilesX86, "Microsoft SDKs", "Windows", version, layout)
			if is64Bit {
				dir = joinWindows(dir, "x64")
			}
			paths = append(paths, joinWindows(dir, ExecutableName))
		}
	}
	return paths
}
