// Command rpm-solv checks whether a package from an RPM/YUM repository
// can be installed without violating any requires, conflicts, or
// obsoletes constraint reachable from it.
package main

import "rpm-solv/internal/cli"

func main() {
	cli.Execute()
}
