package services

import (
	"context"
	"strings"

	"dipadubank/internal/config"
	"dipadubank/internal/models"
	"dipadubank/internal/routes"

	"github.com/google/uuid"
)

var crudOperations = []models.Operation{
	models.OperationRead,
	models.OperationCreate,
	models.OperationUpdate,
	models.OperationDelete,
}

// Policy maps role -> entity -> permitted operations.
type Policy map[string]map[string]map[models.Operation]bool

func (p Policy) Grant(role, entity string, ops ...models.Operation) {
	if p[role] == nil {
		p[role] = make(map[string]map[models.Operation]bool)
	}
	if p[role][entity] == nil {
		p[role][entity] = make(map[models.Operation]bool)
	}
	for _, op := range ops {
		p[role][entity][op] = true
	}
}

func (p Policy) Allows(role, entity string, op models.Operation) bool {
	return p[role][entity][op]
}

// AbilityEntity resolves an ability label such as "Manage bank accounts" to
// the entity it covers ("bank_account").
func AbilityEntity(ability string) string {
	subject := strings.TrimSpace(strings.TrimPrefix(strings.ToLower(ability), "manage "))
	segment := strings.Join(strings.Fields(subject), "-")
	return strings.ReplaceAll(routes.ToEntity(segment), "-", "_")
}

// PolicyFromApp derives the default policy: every role gets full access to the
// entities named by its abilities. Owners may read everything, customers may
// read the tenant company.
func PolicyFromApp(app config.AppConfig, entities []string) Policy {
	policy := make(Policy)

	for _, role := range app.OwnerRoles {
		for _, ability := range app.OwnerAbilities {
			policy.Grant(role, AbilityEntity(ability), crudOperations...)
		}
		for _, entity := range entities {
			policy.Grant(role, entity, models.OperationRead)
		}
	}

	for _, role := range app.CustomerRoles {
		for _, ability := range app.CustomerAbilities {
			policy.Grant(role, AbilityEntity(ability), crudOperations...)
		}
		policy.Grant(role, "company", models.OperationRead)
	}

	return policy
}

// PolicyAuthorizer evaluates access in process from role grants. Record level
// ownership is not evaluated here; resourceID only reaches the remote authorizer.
type PolicyAuthorizer struct {
	policy  Policy
	logger  ResourceLoggerInterface
	metrics MetricsRecorderInterface
}

func NewPolicyAuthorizer(policy Policy, logger ResourceLoggerInterface, metrics MetricsRecorderInterface) AuthorizationServiceInterface {
	return &PolicyAuthorizer{
		policy:  policy,
		logger:  logger,
		metrics: metrics,
	}
}

func (a *PolicyAuthorizer) HasAccess(ctx context.Context, identity models.Identity, entity string, resourceID *uuid.UUID, op models.Operation) (bool, error) {
	allowed := false
	if identity.RoqUserID != "" {
		for _, role := range identity.Roles {
			if a.policy.Allows(role, entity, op) {
				allowed = true
				break
			}
		}
	}

	recordDecision(ctx, a.logger, a.metrics, entity, op, resourceID, allowed)
	return allowed, nil
}

func recordDecision(ctx context.Context, logger ResourceLoggerInterface, metrics MetricsRecorderInterface, entity string, op models.Operation, resourceID *uuid.UUID, allowed bool) {
	decision := "deny"
	if allowed {
		decision = "allow"
	}
	logger.LogAuthorizationDecision(ctx, entity, op, resourceID, allowed)
	metrics.IncrementCounter(MetricAuthorizationDecision, map[string]string{
		"entity":    entity,
		"operation": string(op),
		"decision":  decision,
	})
}
