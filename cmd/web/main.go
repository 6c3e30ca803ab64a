// @title           Trustfluence API
// @version         1.0
// @description     Закрытая платформа отзывов PR-специалистов об инфлюенсерах.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "trustfluence_backend/internal/app"

func main() {
	app.Run()
}
