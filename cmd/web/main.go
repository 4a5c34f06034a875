// @title           lawconnect API
// @version         1.0
// @description     Backend for matching clients with lawyers and tracking request notifications.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "lawconnect_backend/internal/app"

func main() {
	app.Run()
}
