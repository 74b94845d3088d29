// Package data embeds the default reference tables shipped with the bot.
package data

import "embed"

//go:embed *.json
var Files embed.FS
