// Package router đăng ký các route thuộc domain org: Channel, Role, Hierarchy, Designation, Agent, Scope.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "salesverse/internal/api/base/handler"
	orghdl "salesverse/internal/api/org/handler"
	apirouter "salesverse/internal/api/router"
)

// Register đăng ký tất cả route org lên v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerCRUDRoutes(v1, r); err != nil {
		return err
	}
	if err := registerScopeRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerCRUDRoutes(router fiber.Router, r *apirouter.Router) error {
	channelHandler, err := orghdl.NewChannelHandler()
	if err != nil {
		return fmt.Errorf("failed to create channel handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/channel", channelHandler, apirouter.ReadWriteConfig)

	roleHandler, err := orghdl.NewRoleHandler()
	if err != nil {
		return fmt.Errorf("failed to create role handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/role", roleHandler, apirouter.ReadWriteConfig)

	hierarchyHandler, err := orghdl.NewHierarchyHandler()
	if err != nil {
		return fmt.Errorf("failed to create hierarchy handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/hierarchy", hierarchyHandler, apirouter.ReadWriteConfig)

	designationHandler, err := orghdl.NewDesignationHandler()
	if err != nil {
		return fmt.Errorf("failed to create designation handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/designation", designationHandler, apirouter.ReadWriteConfig)

	agentHandler, err := orghdl.NewAgentHandler()
	if err != nil {
		return fmt.Errorf("failed to create agent handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/agent", agentHandler, apirouter.ReadWriteConfig)

	return nil
}

func registerScopeRoutes(router fiber.Router) error {
	scopeHandler, err := orghdl.NewScopeHandler()
	if err != nil {
		return fmt.Errorf("failed to create scope handler: %w", err)
	}
	router.Get("/scope/below-agent/:agentId", scopeHandler.HandleResolveBelowAgent)
	router.Get("/scope/agents-below-designation", scopeHandler.HandleResolveAgentsBelowDesignation)
	router.Get("/scope/team", scopeHandler.HandleResolveTeamVisibility)
	return nil
}
