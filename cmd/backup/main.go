package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"ogre-backend/internal/config"
	"ogre-backend/pkg/database"
	"ogre-backend/pkg/logger"

	"gorm.io/gorm"
)

// command 一个子命令：needsFile 为 true 时必须指定 -file
type command struct {
	usage     string
	needsFile bool
	run       func(ctx context.Context, env *environment) error
}

type environment struct {
	db        *gorm.DB
	manager   *database.BackupManager
	file      string
	clearData bool
	conflict  string
	yes       bool
}

var commands = map[string]command{
	"backup":   {usage: "Export users, proposal records and governance events to JSON", run: runBackup},
	"restore":  {usage: "Import a JSON backup", needsFile: true, run: runRestore},
	"validate": {usage: "Check a backup file can be read", needsFile: true, run: runValidate},
	"info":     {usage: "Print backup version and row counts", needsFile: true, run: runInfo},
	"reset":    {usage: "Drop and recreate all tables (dangerous)", run: runReset},
}

func main() {
	var (
		action    = flag.String("action", "", "Action: backup, restore, validate, info, reset")
		file      = flag.String("file", "", "Backup file path")
		clearData = flag.Bool("clear", false, "Clear existing rows before restore")
		conflict  = flag.String("conflict", string(database.ConflictSkip), "Conflict strategy on restore: skip, replace, error")
		yes       = flag.Bool("yes", false, "Skip confirmation prompts")
	)
	flag.Usage = usage
	flag.Parse()

	cmd, ok := commands[*action]
	if !ok {
		if *action != "" {
			fmt.Fprintf(os.Stderr, "Error: unsupported action %q\n\n", *action)
		}
		usage()
		os.Exit(2)
	}
	if cmd.needsFile && *file == "" {
		fmt.Fprintf(os.Stderr, "Error: -file is required for %s\n", *action)
		os.Exit(2)
	}

	logger.Init(logger.DefaultConfig())
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env := &environment{
		file:      *file,
		clearData: *clearData,
		conflict:  *conflict,
		yes:       *yes,
	}
	// validate/info 只读文件，不需要数据库
	if *action != "validate" && *action != "info" {
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Error("Failed to load config: ", err)
			os.Exit(1)
		}
		env.db, err = database.NewPostgresConnection(&cfg.Database)
		if err != nil {
			logger.Error("Failed to connect to database: ", err)
			os.Exit(1)
		}
	}
	env.manager = database.NewBackupManager(env.db)

	if err := cmd.run(ctx, env); err != nil {
		logger.Error("Backup tool Error: ", err, "action", *action)
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", *action, err)
		os.Exit(1)
	}
}

func runBackup(ctx context.Context, env *environment) error {
	path := env.file
	if path == "" {
		path = fmt.Sprintf("./backups/ogre_backup_%s.json", time.Now().Format("20060102_150405"))
	}
	if err := env.manager.CreateBackup(ctx, path); err != nil {
		return err
	}
	fmt.Printf("Backup written to %s\n", path)
	return nil
}

func runRestore(ctx context.Context, env *environment) error {
	onConflict, err := database.ParseConflictAction(env.conflict)
	if err != nil {
		return err
	}

	fmt.Printf("Restoring %s (conflict strategy: %s)\n", env.file, onConflict)
	if env.clearData {
		fmt.Println("Existing users, proposal records and events will be deleted first.")
	}
	if !env.confirm("Continue? (y/N): ", "y") {
		fmt.Println("Operation cancelled")
		return nil
	}

	if err := env.manager.RestoreBackup(ctx, env.file, database.RestoreOptions{
		ClearExisting: env.clearData,
		OnConflict:    onConflict,
	}); err != nil {
		return err
	}
	fmt.Println("Restore completed")
	return nil
}

func runValidate(_ context.Context, env *environment) error {
	if err := env.manager.ValidateBackup(env.file); err != nil {
		return err
	}
	fmt.Printf("%s is a valid backup\n", env.file)
	return nil
}

func runInfo(_ context.Context, env *environment) error {
	info, counts, err := env.manager.GetBackupInfo(env.file)
	if err != nil {
		return err
	}

	fmt.Printf("Version:    %s\n", info.Version)
	fmt.Printf("Created at: %s\n", info.Timestamp.Format(time.RFC3339))

	tables := make([]string, 0, len(counts))
	for name := range counts {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	for _, name := range tables {
		fmt.Printf("  %-20s %d rows\n", name, counts[name])
	}
	return nil
}

func runReset(_ context.Context, env *environment) error {
	fmt.Println("This drops every table and all indexed data.")
	if !env.confirm("Type RESET to continue: ", "RESET") {
		fmt.Println("Operation cancelled")
		return nil
	}
	if err := database.ResetTables(env.db); err != nil {
		return err
	}
	fmt.Println("Tables recreated")
	return nil
}

// confirm 读取一行输入并与 want 比较，-yes 时直接通过
func (env *environment) confirm(prompt, want string) bool {
	if env.yes {
		return true
	}
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.TrimSpace(line)
	if want == "y" {
		return strings.EqualFold(answer, want)
	}
	return answer == want
}

func usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(os.Stderr, "OGRE database backup tool\n\nUsage:\n  %s -action=<action> [options]\n\nActions:\n", os.Args[0])
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-9s %s\n", name, commands[name].usage)
	}
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n  %s -action=backup\n  %s -action=restore -file=./backups/ogre.json -clear -conflict=replace\n  %s -action=info -file=./backups/ogre.json\n",
		os.Args[0], os.Args[0], os.Args[0])
}
