package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Config    string `help:"Path to the configuration file." type:"path"`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Init      InitCmd      `cmd:"" help:"Create the configuration file, database and default categories."`
	Account   AccountCmd   `cmd:"" help:"Manage accounts."`
	Category  CategoryCmd  `cmd:"" help:"Manage categories."`
	Person    PersonCmd    `cmd:"" help:"Manage persons for shared expenses."`
	Record    RecordCmd    `cmd:"" help:"Manage records."`
	Template  TemplateCmd  `cmd:"" help:"Manage record templates for recurring entries."`
	Split     SplitCmd     `cmd:"" help:"Manage shared-expense splits."`
	Summary   SummaryCmd   `cmd:"" help:"Show income, expenses and balances for a period."`
	Breakdown BreakdownCmd `cmd:"" help:"Show per-category totals for a period."`
	Unpaid    UnpaidCmd    `cmd:"" help:"Show outstanding amounts per person."`
	Budget    BudgetCmd    `cmd:"" help:"Show the budget report for a period."`
}
