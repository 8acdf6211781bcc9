package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inkwell/app/config"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/services"

	"github.com/sirupsen/logrus"
)

var exit = os.Exit

// HandleCommand dispatches a CLI subcommand.
func HandleCommand(args []string) {
	if len(args) < 1 {
		PrintHelp()
		exit(1)
		return
	}

	cfg := config.Load()

	cmd := args[0]
	switch cmd {
	case "serve":
		serve(cfg)
	case "clean":
		clean(cfg)
	case "init":
		initDb(cfg)
	case "backup":
		backup(cfg)
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			exit(1)
			return
		}
		restore(cfg, args[1])
	case "help":
		PrintHelp()
	default:
		fmt.Printf("Unknown command: %s\n\n", cmd)
		PrintHelp()
		exit(1)
	}
}

// PrintHelp prints usage for the CLI subcommands.
func PrintHelp() {
	helpText := `Usage: inkwell <command> [options]

Commands:
  serve                          Run the blog API server
  init                           Initialize a new empty database
  clean                          Remove the blog database
  backup                         Create a backup of the database
  restore [file]                 Restore database from backup
  version                        Show version information
  help                           Display this help message

Configuration is read from the environment (or a .env file):
  INKWELL_ADDR, INKWELL_DB_PATH, INKWELL_JWT_SECRET, INKWELL_UPLOAD_DIR,
  FIREBASE_CREDENTIALS_PATH, INKWELL_STORAGE_BUCKET
`
	fmt.Println(helpText)
}

// serve starts the blog API server.
func serve(cfg *config.Config) {
	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	users := repositories.NewBadgerUserRepository(db)
	posts := repositories.NewBadgerPostRepository(db)

	opts := routes.Options{
		Users: users,
		Posts: posts,
		Auth:  services.NewAuthService(users, []byte(cfg.JWTSecret)),
	}

	if cfg.UseFirebase() {
		uploader, err := services.NewFirebaseUploader(context.Background(), cfg.FirebaseCredentials, cfg.StorageBucket)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize cloud storage")
		}
		opts.Uploader = uploader
		logrus.WithField("bucket", cfg.StorageBucket).Info("storing images in cloud storage")
	} else {
		uploader, err := services.NewLocalUploader(cfg.UploadDir)
		if err != nil {
			logrus.WithError(err).Fatal("failed to prepare upload directory")
		}
		opts.Uploader = uploader
		opts.UploadDir = cfg.UploadDir
		logrus.WithField("dir", cfg.UploadDir).Info("storing images locally")
	}

	router := routes.SetupRoutes(opts)

	logrus.WithField("addr", cfg.Addr).Info("starting blog API server")
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		logrus.WithError(err).Fatal("server error")
	}
}

// clean removes the database.
func clean(cfg *config.Config) {
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(cfg.DBPath); err != nil {
		logrus.WithError(err).Fatal("failed to clean database")
	}
	fmt.Println("Database cleaned successfully")
}

// initDb initializes a new empty database.
func initDb(cfg *config.Config) {
	if _, err := os.Stat(cfg.DBPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// backup creates a backup of the database.
func backup(cfg *config.Config) {
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := filepath.Join(filepath.Dir(cfg.DBPath), "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		logrus.WithError(err).Fatal("failed to create backup directory")
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create backup file")
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		logrus.WithError(err).Fatal("failed to backup database")
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a backup file.
func restore(cfg *config.Config, backupFile string) {
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(cfg.DBPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(cfg.DBPath); err != nil {
			logrus.WithError(err).Fatal("failed to remove existing database")
		}
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open backup file")
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		logrus.WithError(err).Fatal("failed to restore database")
	}

	fmt.Println("Database restored successfully")
}
