package main

import (
	"embed"
	"io"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

const logFileName = "foxhole_stockpiles.log"

func main() {
	// Log to both console and file so hotkey issues can be diagnosed after
	// the window is closed.
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Warning: Could not create log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	}

	log.Println("=== Foxhole Stockpiles Client starting ===")

	app := NewApp()

	err = wails.Run(&options.App{
		Title:     "Foxhole Stockpiles",
		Width:     420,
		Height:    620,
		MinWidth:  400,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 34, G: 34, B: 34, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []any{
			app,
		},
	})
	if err != nil {
		log.Fatalf("Error running application: %v", err)
	}
}
