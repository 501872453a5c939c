package cmd

// RootsCmd manages roots
type RootsCmd struct {
	Add  RootsAddCmd  `cmd:"add" help:"Add a new root"`
	Del  RootsDelCmd  `cmd:"del" help:"Delete a root and its test cases"`
	List RootsListCmd `cmd:"list" help:"List all roots" default:"1"`
	View RootsViewCmd `cmd:"view" help:"View a root and its test cases"`
}
