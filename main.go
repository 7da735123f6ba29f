package main

import "moodboard/cmd/app"

// @title           Moodboard API
// @version         1.0
// @description     Boards, canvas items, image uploads and link previews.
// @BasePath        /
func main() {
	app.GetApp().LetsGo()
}
