// Package commands defines the wallpaper CLI.
//
// Commands
//
//   - generate   Render a token's wallpaper to a PNG file
//   - metadata   Print a token's metadata as JSON
//   - qr         Write a QR code PNG
//   - serve      Run the web server
//
// Settings come from the environment (see internal/config); flags override them.
package commands
