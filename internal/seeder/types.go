package seeder

type Config struct {
	Truncate bool // Clear tables before seeding
	Batch    int  // Rows per insert statement
	Force    bool // Report and skip failing tables instead of stopping
}

type TableInfo struct {
	Name         string
	Dataset      string
	Dependencies []string
}

// Result records what happened to each store table.
type Result struct {
	Order    []string
	Inserted map[string]int
	Failed   map[string]error
}
