package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/FuturFusion/workload-migrator/cmd/workload-migratord/internal/config"
	"github.com/FuturFusion/workload-migrator/internal/migration"
	"github.com/FuturFusion/workload-migrator/internal/server/request"
	"github.com/FuturFusion/workload-migrator/internal/server/response"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

var migrationsCmd = APIEndpoint{
	Path: "migrations",

	Get:  APIEndpointAction{Handler: migrationsGet},
	Post: APIEndpointAction{Handler: migrationsPost},
}

var migrationCmd = APIEndpoint{
	Path: "migrations/{id}",

	Delete: APIEndpointAction{Handler: migrationDelete},
	Get:    APIEndpointAction{Handler: migrationGet},
	Put:    APIEndpointAction{Handler: migrationPut},
}

var migrationStartCmd = APIEndpoint{
	Path: "migrations/{id}/start",

	Post: APIEndpointAction{Handler: migrationStartPost},
}

var migrationStatusCmd = APIEndpoint{
	Path: "migrations/{id}/status",

	Get: APIEndpointAction{Handler: migrationStatusGet},
}

// swagger:operation GET /1.0/migrations migrations migrations_get
//
//	Get the migrations
//
//	Returns a list of migrations (URLs).
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: API migrations
//	    schema:
//	      type: object
//	      description: Sync response
//	      properties:
//	        type:
//	          type: string
//	          description: Response type
//	          example: sync
//	        status:
//	          type: string
//	          description: Status description
//	          example: Success
//	        status_code:
//	          type: integer
//	          description: Status code
//	          example: 200
//	        metadata:
//	          type: array
//	          description: List of migrations
//	          items:
//	            type: string
//	          example: |-
//	            [
//	              "/1.0/migrations/0192c7d4-4a5b-7c3a-8f50-2a1be3a49a5c"
// 	            ]
//	  "500":
//	    $ref: "#/responses/InternalServerError"

// swagger:operation GET /1.0/migrations?recursion=1 migrations migrations_get_recursion
//
//	Get the migrations
//
//	Returns a list of migrations (structs).
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: API migrations
//	    schema:
//	      type: object
//	      description: Sync response
//	      properties:
//	        type:
//	          type: string
//	          description: Response type
//	          example: sync
//	        status:
//	          type: string
//	          description: Status description
//	          example: Success
//	        status_code:
//	          type: integer
//	          description: Status code
//	          example: 200
//	        metadata:
//	          type: array
//	          description: List of migrations
//	          items:
//	            $ref: "#/definitions/Migration"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func migrationsGet(d *Daemon, r *http.Request) response.Response {
	// Parse the recursion field.
	recursion, err := strconv.Atoi(request.QueryParam(r, "recursion"))
	if err != nil {
		recursion = 0
	}

	if recursion > 0 {
		migrations, err := d.migration.GetAll(r.Context())
		if err != nil {
			return response.SmartError(err)
		}

		result := make([]api.Migration, 0, len(migrations))
		for _, mig := range migrations {
			result = append(result, mig.ToAPI())
		}

		return response.SyncResponse(true, result)
	}

	ids, err := d.migration.GetAllIDs(r.Context())
	if err != nil {
		return response.SmartError(err)
	}

	result := make([]string, 0, len(ids))
	for _, id := range ids {
		result = append(result, fmt.Sprintf("/%s/migrations/%s", api.APIVersion, id.String()))
	}

	return response.SyncResponse(true, result)
}

// swagger:operation POST /1.0/migrations migrations migrations_post
//
//	Add a migration
//
//	Defines a new migration from a source workload snapshot to a cloud target.
//
//	---
//	consumes:
//	  - application/json
//	produces:
//	  - application/json
//	parameters:
//	  - in: body
//	    name: migration
//	    description: Migration definition
//	    required: true
//	    schema:
//	      $ref: "#/definitions/Migration"
//	responses:
//	  "201":
//	    description: Migration created
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func migrationsPost(d *Daemon, r *http.Request) response.Response {
	var apiMigration api.Migration

	err := json.NewDecoder(r.Body).Decode(&apiMigration)
	if err != nil {
		return response.BadRequest(err)
	}

	source, err := migration.WorkloadFromAPI(apiMigration.Source)
	if err != nil {
		return response.SmartError(err)
	}

	mig, err := d.migration.Create(r.Context(), source, apiMigration.MigrationTarget, apiMigration.SelectedMountPoints)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed creating migration: %w", err))
	}

	return response.SyncResponseLocation(true, mig.ToAPI(), "/"+api.APIVersion+"/migrations/"+mig.ID.String())
}

// swagger:operation GET /1.0/migrations/{id} migrations migration_get
//
//	Get the migration
//
//	Gets a specific migration.
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: Migration
//	    schema:
//	      type: object
//	      description: Sync response
//	      properties:
//	        type:
//	          type: string
//	          description: Response type
//	          example: sync
//	        status:
//	          type: string
//	          description: Status description
//	          example: Success
//	        status_code:
//	          type: integer
//	          description: Status code
//	          example: 200
//	        metadata:
//	          $ref: "#/definitions/Migration"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func migrationGet(d *Daemon, r *http.Request) response.Response {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid migration ID: %w", err))
	}

	mig, err := d.migration.GetByID(r.Context(), id)
	if err != nil {
		return response.SmartError(err)
	}

	return response.SyncResponse(true, mig.ToAPI())
}

// swagger:operation PUT /1.0/migrations/{id} migrations migration_put
//
//	Update the migration
//
//	Replaces the selected mount points of a migration that has not started
//	or has failed.
//
//	---
//	consumes:
//	  - application/json
//	produces:
//	  - application/json
//	parameters:
//	  - in: body
//	    name: migration
//	    description: Migration definition
//	    required: true
//	    schema:
//	      $ref: "#/definitions/Migration"
//	responses:
//	  "200":
//	    description: Migration updated
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func migrationPut(d *Daemon, r *http.Request) response.Response {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid migration ID: %w", err))
	}

	var apiMigration api.Migration

	err = json.NewDecoder(r.Body).Decode(&apiMigration)
	if err != nil {
		return response.BadRequest(err)
	}

	mig, err := d.migration.UpdateByID(r.Context(), id, apiMigration.SelectedMountPoints)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed updating migration %q: %w", id.String(), err))
	}

	return response.SyncResponse(true, mig.ToAPI())
}

// swagger:operation DELETE /1.0/migrations/{id} migrations migration_delete
//
//	Delete the migration
//
//	Removes the migration.
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "204":
//	    description: Migration deleted
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func migrationDelete(d *Daemon, r *http.Request) response.Response {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid migration ID: %w", err))
	}

	err = d.migration.DeleteByID(r.Context(), id)
	if err != nil {
		return response.SmartError(err)
	}

	return response.DeletedResponse
}

// swagger:operation POST /1.0/migrations/{id}/start migrations migration_start
//
//	Start the migration
//
//	Runs the migration synchronously and returns its final representation.
//	The simulated transfer time defaults to the configured delay when the
//	body omits it.
//
//	---
//	consumes:
//	  - application/json
//	produces:
//	  - application/json
//	parameters:
//	  - in: body
//	    name: start
//	    description: Start parameters
//	    required: false
//	    schema:
//	      $ref: "#/definitions/MigrationStart"
//	responses:
//	  "200":
//	    description: Migration finished
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func migrationStartPost(d *Daemon, r *http.Request) response.Response {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid migration ID: %w", err))
	}

	delayMinutes := config.DefaultDelayMinutes
	if d.config != nil {
		delayMinutes = d.config.Migration.DefaultDelayMinutes
	}

	var start api.MigrationStart

	err = json.NewDecoder(r.Body).Decode(&start)
	if err != nil && !errors.Is(err, io.EOF) {
		return response.BadRequest(err)
	}

	if start.DelayMinutes > 0 {
		delayMinutes = start.DelayMinutes
	}

	delay := time.Duration(delayMinutes * float64(time.Minute))

	mig, err := d.migration.Run(r.Context(), id, delay)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed running migration %q: %w", id.String(), err))
	}

	return response.SyncResponse(true, mig.ToAPI())
}

// swagger:operation GET /1.0/migrations/{id}/status migrations migration_status
//
//	Get the migration status
//
//	Returns the condensed execution state of the migration.
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: Migration status
//	    schema:
//	      type: object
//	      description: Sync response
//	      properties:
//	        type:
//	          type: string
//	          description: Response type
//	          example: sync
//	        status:
//	          type: string
//	          description: Status description
//	          example: Success
//	        status_code:
//	          type: integer
//	          description: Status code
//	          example: 200
//	        metadata:
//	          $ref: "#/definitions/MigrationStatus"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func migrationStatusGet(d *Daemon, r *http.Request) response.Response {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return response.BadRequest(fmt.Errorf("Invalid migration ID: %w", err))
	}

	status, err := d.migration.StatusByID(r.Context(), id)
	if err != nil {
		return response.SmartError(err)
	}

	return response.SyncResponse(true, status)
}
