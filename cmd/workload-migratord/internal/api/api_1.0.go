package api

import (
	"net/http"

	"github.com/FuturFusion/workload-migrator/internal/server/response"
	"github.com/FuturFusion/workload-migrator/internal/version"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

var api10Cmd = APIEndpoint{
	Get: APIEndpointAction{Handler: api10Get},
}

var api10 = []APIEndpoint{
	api10Cmd,
	migrationCmd,
	migrationStartCmd,
	migrationStatusCmd,
	migrationsCmd,
	workloadCmd,
	workloadsCmd,
}

// swagger:operation GET /1.0 server server_get
//
//	Get the server environment
//
//	Shows the server environment.
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: Server environment and configuration
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
//	          $ref: "#/definitions/Server"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func api10Get(d *Daemon, r *http.Request) response.Response {
	srv := api.Server{
		APIStatus:     api.APIStatus,
		APIVersion:    api.APIVersion,
		DaemonVersion: version.Version,
	}

	return response.SyncResponse(true, srv)
}
