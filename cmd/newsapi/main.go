// Command newsapi serves the news REST API and manages its database.
package main

import "github.com/tbourn/go-news-api/cmd/newsapi/commands"

func main() {
	commands.Execute()
}
