package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Scrape  ScrapeCmd  `cmd:"" default:"1"                    help:"Scrape the brewery list and print it as JSON"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations"`
	Serve   ServeCmd   `cmd:"" help:"Run the server"`
}
