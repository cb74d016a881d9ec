package rbac

import (
	"crooly-service/internal/app/config"
	"log"

	"github.com/casbin/casbin/v2"
)

func NewCasbinEnforcer(internalConfig *config.InternalConfig) *casbin.Enforcer {
	enforcer, err := casbin.NewEnforcer(internalConfig.RBAC.ModelPath, internalConfig.RBAC.PolicyPath)
	if err != nil {
		log.Fatalf("Failed to initialize casbin enforcer: %s", err.Error())
	}

	err = enforcer.LoadPolicy()
	if err != nil {
		log.Fatalf("Failed to load casbin policy: %s", err.Error())
	}

	log.Println("Successfully loaded RBAC policy")
	return enforcer
}
