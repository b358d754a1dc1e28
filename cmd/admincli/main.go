// Package main provides the admin CLI entry point.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"

	"github.com/hoosierillusions/kiosk/internal/api"
)

var (
	app    = kingpin.New("kiosk-admincli", "Hoosier Illusions kiosk admin client")
	server = app.Flag("server", "Server address").Default("http://localhost:8080").String()
	token  = app.Flag("token", "Admin token (or set ADMIN_TOKEN env)").Envar("ADMIN_TOKEN").String()

	// status command
	statusCmd = app.Command("status", "Get playback state")

	// nowplaying command
	nowPlayingCmd = app.Command("nowplaying", "Get station now-playing metadata").Alias("np")

	// config command
	configCmd = app.Command("config", "Print the effective trigger catalog")

	// custom-media commands
	customGetCmd = app.Command("custom-get", "Print the stored catalog overrides")
	customSetCmd = app.Command("custom-set", "Replace the stored catalog overrides from a JSON file")
	customFile   = customSetCmd.Arg("file", "JSON file with the full override set").Required().ExistingFile()

	// theater layout commands
	theaterGetCmd = app.Command("theater-get", "Print the theater scene config")
	theaterSetCmd = app.Command("theater-set", "Replace the theater scene config from a JSON file")
	theaterFile   = theaterSetCmd.Arg("file", "JSON file").Required().ExistingFile()

	videoPosGetCmd = app.Command("videopos-get", "Print the theater video position")
	videoPosSetCmd = app.Command("videopos-set", "Replace the theater video position from a JSON file")
	videoPosFile   = videoPosSetCmd.Arg("file", "JSON file").Required().ExistingFile()

	hotspotGetCmd = app.Command("hotspot-get", "Print the hotspot layout")
	hotspotSetCmd = app.Command("hotspot-set", "Replace the hotspot layout from a JSON file")
	hotspotFile   = hotspotSetCmd.Arg("file", "JSON file").Required().ExistingFile()

	// trigger command
	triggerCmd  = app.Command("trigger", "Submit a trigger word")
	triggerText = triggerCmd.Arg("text", "Trigger text").Required().String()

	// reset command
	resetCmd = app.Command("reset", "Reset the kiosk to the idle loop")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	client := resty.New().SetBaseURL(*server)
	if *token != "" {
		client.SetHeader(api.AdminTokenHeader, *token)
	}

	switch command {
	case statusCmd.FullCommand():
		get(client, "/api/playback/state")
	case nowPlayingCmd.FullCommand():
		get(client, "/api/nowplaying")
	case configCmd.FullCommand():
		get(client, "/api/config")
	case customGetCmd.FullCommand():
		get(client, "/api/custom-media")
	case customSetCmd.FullCommand():
		postFile(client, "/api/custom-media", *customFile)
	case theaterGetCmd.FullCommand():
		get(client, "/api/theater-config")
	case theaterSetCmd.FullCommand():
		postFile(client, "/api/theater-config", *theaterFile)
	case videoPosGetCmd.FullCommand():
		get(client, "/api/video-position")
	case videoPosSetCmd.FullCommand():
		postFile(client, "/api/video-position", *videoPosFile)
	case hotspotGetCmd.FullCommand():
		get(client, "/api/hotspot-config")
	case hotspotSetCmd.FullCommand():
		postFile(client, "/api/hotspot-config", *hotspotFile)
	case triggerCmd.FullCommand():
		postJSON(client, "/api/playback/trigger", map[string]string{"text": *triggerText})
	case resetCmd.FullCommand():
		postJSON(client, "/api/playback/reset", map[string]string{})
	}
}

func get(client *resty.Client, path string) {
	resp, err := client.R().Get(path)
	finish(resp, err)
}

func postJSON(client *resty.Client, path string, body any) {
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	finish(resp, err)
}

func postFile(client *resty.Client, path, file string) {
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if !json.Valid(data) {
		fmt.Printf("Error: %s is not valid JSON\n", file)
		os.Exit(1)
	}

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post(path)
	finish(resp, err)
}

// finish pretty-prints the response body and exits non-zero on failure.
func finish(resp *resty.Response, err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if json.Indent(&pretty, resp.Body(), "", "  ") == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Println(string(resp.Body()))
	}

	if resp.IsError() {
		os.Exit(1)
	}
}
