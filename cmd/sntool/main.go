// Command sntool locates the .NET strong-name tool and runs it against
// assemblies.
package main

import "os"

func main() {
	os.Exit(Execute(NewApp(Dependencies{})))
}
