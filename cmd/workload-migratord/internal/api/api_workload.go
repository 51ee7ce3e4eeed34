package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/FuturFusion/workload-migrator/internal/migration"
	"github.com/FuturFusion/workload-migrator/internal/server/request"
	"github.com/FuturFusion/workload-migrator/internal/server/response"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

var workloadsCmd = APIEndpoint{
	Path: "workloads",

	Get:  APIEndpointAction{Handler: workloadsGet},
	Post: APIEndpointAction{Handler: workloadsPost},
}

var workloadCmd = APIEndpoint{
	Path: "workloads/{ip}",

	Delete: APIEndpointAction{Handler: workloadDelete},
	Get:    APIEndpointAction{Handler: workloadGet},
	Put:    APIEndpointAction{Handler: workloadPut},
}

// swagger:operation GET /1.0/workloads workloads workloads_get
//
//	Get the workloads
//
//	Returns a list of workloads (URLs).
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: API workloads
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
//	          description: List of workloads
//	          items:
//	            type: string
//	          example: |-
//	            [
//	              "/1.0/workloads/10.0.0.1",
//	              "/1.0/workloads/10.0.0.2"
// 	            ]
//	  "500":
//	    $ref: "#/responses/InternalServerError"

// swagger:operation GET /1.0/workloads?recursion=1 workloads workloads_get_recursion
//
//	Get the workloads
//
//	Returns a list of workloads (structs).
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: API workloads
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
//	          description: List of workloads
//	          items:
//	            $ref: "#/definitions/Workload"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func workloadsGet(d *Daemon, r *http.Request) response.Response {
	// Parse the recursion field.
	recursion, err := strconv.Atoi(request.QueryParam(r, "recursion"))
	if err != nil {
		recursion = 0
	}

	if recursion > 0 {
		workloads, err := d.workload.GetAll(r.Context())
		if err != nil {
			return response.SmartError(err)
		}

		result := make([]api.Workload, 0, len(workloads))
		for _, workload := range workloads {
			result = append(result, workload.ToAPI())
		}

		return response.SyncResponse(true, result)
	}

	ips, err := d.workload.GetAllIPs(r.Context())
	if err != nil {
		return response.SmartError(err)
	}

	result := make([]string, 0, len(ips))
	for _, ip := range ips {
		result = append(result, fmt.Sprintf("/%s/workloads/%s", api.APIVersion, ip))
	}

	return response.SyncResponse(true, result)
}

// swagger:operation POST /1.0/workloads workloads workloads_post
//
//	Add a workload
//
//	Registers a new workload under its IP address.
//
//	---
//	consumes:
//	  - application/json
//	produces:
//	  - application/json
//	parameters:
//	  - in: body
//	    name: workload
//	    description: Workload definition
//	    required: true
//	    schema:
//	      $ref: "#/definitions/Workload"
//	responses:
//	  "201":
//	    description: Workload created
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "409":
//	    description: A workload with this IP is already registered
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func workloadsPost(d *Daemon, r *http.Request) response.Response {
	var apiWorkload api.Workload

	err := json.NewDecoder(r.Body).Decode(&apiWorkload)
	if err != nil {
		return response.BadRequest(err)
	}

	workload, err := migration.WorkloadFromAPI(apiWorkload)
	if err != nil {
		return response.SmartError(err)
	}

	workload, err = d.workload.Create(r.Context(), workload)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed creating workload %q: %w", apiWorkload.IP, err))
	}

	return response.SyncResponseLocation(true, workload.ToAPI(), "/"+api.APIVersion+"/workloads/"+workload.IP())
}

// swagger:operation GET /1.0/workloads/{ip} workloads workload_get
//
//	Get the workload
//
//	Gets a specific workload.
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "200":
//	    description: Workload
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
//	          $ref: "#/definitions/Workload"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func workloadGet(d *Daemon, r *http.Request) response.Response {
	ip := r.PathValue("ip")

	workload, err := d.workload.GetByIP(r.Context(), ip)
	if err != nil {
		return response.SmartError(err)
	}

	return response.SyncResponse(true, workload.ToAPI())
}

// swagger:operation PUT /1.0/workloads/{ip} workloads workload_put
//
//	Update the workload
//
//	Updates the workload definition. The IP address cannot be changed.
//
//	---
//	consumes:
//	  - application/json
//	produces:
//	  - application/json
//	parameters:
//	  - in: body
//	    name: workload
//	    description: Workload definition
//	    required: true
//	    schema:
//	      $ref: "#/definitions/Workload"
//	responses:
//	  "200":
//	    description: Workload updated
//	  "400":
//	    $ref: "#/responses/BadRequest"
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func workloadPut(d *Daemon, r *http.Request) response.Response {
	ip := r.PathValue("ip")

	var apiWorkload api.Workload

	err := json.NewDecoder(r.Body).Decode(&apiWorkload)
	if err != nil {
		return response.BadRequest(err)
	}

	if apiWorkload.IP != "" && apiWorkload.IP != ip {
		return response.BadRequest(fmt.Errorf("IP address cannot be modified"))
	}

	apiWorkload.IP = ip

	workload, err := migration.WorkloadFromAPI(apiWorkload)
	if err != nil {
		return response.SmartError(err)
	}

	err = d.workload.UpdateByIP(r.Context(), ip, &workload)
	if err != nil {
		return response.SmartError(fmt.Errorf("Failed updating workload %q: %w", ip, err))
	}

	return response.SyncResponse(true, workload.ToAPI())
}

// swagger:operation DELETE /1.0/workloads/{ip} workloads workload_delete
//
//	Delete the workload
//
//	Removes the workload and frees its IP for re-registration.
//
//	---
//	produces:
//	  - application/json
//	responses:
//	  "204":
//	    description: Workload deleted
//	  "404":
//	    $ref: "#/responses/NotFound"
//	  "500":
//	    $ref: "#/responses/InternalServerError"
func workloadDelete(d *Daemon, r *http.Request) response.Response {
	ip := r.PathValue("ip")

	err := d.workload.DeleteByIP(r.Context(), ip)
	if err != nil {
		return response.SmartError(err)
	}

	return response.DeletedResponse
}
