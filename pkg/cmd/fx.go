package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		NewLogger,
		NewEnv,
		fx.Annotate(syncCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(queryCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(execCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(databasesCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(createDatabaseCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(tablesCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(ddlCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(describeCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(dropCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(truncateCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(countCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(pingCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
