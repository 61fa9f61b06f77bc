package route

import (
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/quintadosovos/erp-avicola/pkg/middleware"
)

// RegisterEmployeeRoutes registra as rotas do módulo de recursos humanos
func RegisterEmployeeRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, employeeController *controller.EmployeeController) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(jwtService), middleware.RequirePermission(user.PermHR))
	{
		employees.GET("", employeeController.List)
		employees.POST("", employeeController.Create)
		employees.PUT("/:id", employeeController.Update)
		employees.DELETE("/:id", employeeController.Delete)
		employees.POST("/:id/pay", employeeController.PaySalary)
	}
}
