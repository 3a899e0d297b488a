package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radelytskyi20/TaskManagement/internal/infra/components/http_server"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"

	"github.com/radelytskyi20/TaskManagement/internal/auth"
	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/controller"
)

// Unified route registration.
func init() {
	http_server.RegisterRoutes(func(r chi.Router, c *core.Container) error {
		jwtComp, err := c.Resolve(bizConsts.COMP_JWT_PROVIDER)
		if err != nil {
			return err
		}
		jwtProvider := jwtComp.(*auth.JwtProvider)

		// 吊销存储可选, 未注册时仅跳过吊销检查
		var tokens auth.TokenStore
		if tsComp, err := c.Resolve(bizConsts.COMP_TOKEN_STORE); err == nil {
			tokens = tsComp.(auth.TokenStore)
		}
		authed := auth.Middleware(jwtProvider, tokens)

		taskComp, err := c.Resolve(bizConsts.COMP_CTRL_TASK)
		if err != nil {
			return err
		}
		taskCtrl := taskComp.(*controller.TaskController)

		r.Route("/api/v1/tasks", func(r chi.Router) {
			r.Use(authed)

			r.Get("/", taskCtrl.List)
			r.Post("/", taskCtrl.Create)

			r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
				taskCtrl.Get(w, req, chi.URLParam(req, "id"))
			})
			r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
				taskCtrl.Update(w, req, chi.URLParam(req, "id"))
			})
			r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
				taskCtrl.Delete(w, req, chi.URLParam(req, "id"))
			})
		})

		userComp, err := c.Resolve(bizConsts.COMP_CTRL_USER)
		if err != nil {
			return err
		}
		userCtrl := userComp.(*controller.UserController)

		r.Route("/api/v1/users", func(r chi.Router) {
			r.Post("/register", userCtrl.Register)
			r.Post("/login", userCtrl.Login)
			r.With(authed).Post("/logout", userCtrl.Logout)
		})

		return nil
	})
}
