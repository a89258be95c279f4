package cmd

// Config carries all runtime settings of the application. Values come from
// the environment; see cmd/app/main.go for the variable names.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// BlobRoot is the directory the filesystem blob store writes under.
	BlobRoot string
	// BlobBaseURL is the externally reachable prefix of signed blob URLs.
	BlobBaseURL string
	// SignedURLSecret keys the HMAC signatures of expiring blob URLs.
	SignedURLSecret string

	// BudgetCommentThreshold is the estimated budget above which approvals
	// must carry a comment. Zero disables the rule.
	BudgetCommentThreshold int64

	// RoleBindings is the static user-to-roles table in its configuration
	// form: "uuid=role1|role2" entries separated by commas.
	RoleBindings string
}
