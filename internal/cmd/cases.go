package cmd

// CasesCmd manages test cases
type CasesCmd struct {
	Add  CasesAddCmd  `cmd:"add" help:"Append a test case to a root"`
	Del  CasesDelCmd  `cmd:"del" help:"Delete a test case"`
	List CasesListCmd `cmd:"list" help:"List the test cases of a root in match order"`
}
