// Package docs describes the repository layout.
//
//	bankroll-api/
//	├── go.mod
//	├── cmd/
//	│    └── main.go                  # Entry point
//	├── scripts/
//	│    └── import_csv.go            # Standalone CSV backfill tool
//	├── internal/
//	│   ├── api/
//	│   │   ├── sessions/
//	│   │   │   ├── controller.go
//	│   │   │   ├── router.go
//	│   │   │   ├── schema.go
//	│   │   │   └── service.go
//	│   │   ├── imports/
//	│   │   │   ├── controller.go
//	│   │   │   ├── router.go
//	│   │   │   ├── service.go
//	│   │   │   ├── store.go
//	│   │   │   ├── types.go
//	│   │   │   └── worker.go
//	│   │   ├── stats/
//	│   │   ├── profiles/
//	│   │   └── index.go              # Registers all feature routers to main router
//	│   ├── config/
//	│   │   └── config.go             # App configuration, env vars
//	│   ├── csvimport/
//	│   │   ├── tokenizer.go          # Quote-aware PBT CSV tokenizer
//	│   │   ├── mapper.go             # Heuristic row → session mapping
//	│   │   └── importer.go           # Batch driver (successes + row errors)
//	│   ├── loaders/
//	│   │   └── postgres.go
//	│   ├── types/
//	│   │   └── session.go            # Domain model + DTOs
//	│   └── utils/
//	│       └── logger.go
package docs
