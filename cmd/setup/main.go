// Command setup collects the Google API keys interactively and writes them
// to a .env file the server picks up on start.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	geminiKey := os.Getenv("GOOGLE_API_KEY")
	if geminiKey == "" {
		fmt.Println("⚠️  GOOGLE_API_KEY is not set")
		fmt.Println("Please get your API key from: https://makersuite.google.com/app/apikey")
		geminiKey = prompt(reader, "Enter your Gemini API key: ")
	}

	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if mapsKey == "" {
		fmt.Println("⚠️  GOOGLE_MAPS_API_KEY is not set")
		fmt.Println("Please get your API key from: https://console.cloud.google.com/google/maps-apis/credentials")
		mapsKey = prompt(reader, "Enter your Google Maps API key: ")
	}

	content := fmt.Sprintf("GOOGLE_API_KEY=%s\nGOOGLE_MAPS_API_KEY=%s\n", geminiKey, mapsKey)
	if err := os.WriteFile(".env", []byte(content), 0o600); err != nil {
		log.Fatalf("Failed to write .env: %v", err)
	}

	fmt.Println("✅ Environment variables are saved to .env file!")
	fmt.Println("You can now start the server with PORT set, e.g.: PORT=8080 ./server")
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	return strings.TrimSpace(line)
}
