package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/FuturFusion/workload-migrator/internal/migration"
	"github.com/FuturFusion/workload-migrator/internal/migration/repo"
	"github.com/FuturFusion/workload-migrator/internal/transaction"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

type workload struct {
	db repo.DBTX
}

var _ migration.WorkloadRepo = &workload{}

func NewWorkload(db repo.DBTX) *workload {
	return &workload{
		db: db,
	}
}

func (w workload) Create(ctx context.Context, in migration.Workload) error {
	wl := in.ToAPI()

	credentials, err := json.Marshal(wl.Credentials)
	if err != nil {
		return err
	}

	storage, err := json.Marshal(wl.Storage)
	if err != nil {
		return err
	}

	const q = `INSERT INTO workloads (ip, credentials, storage) VALUES (?, ?, ?)`

	_, err = transaction.GetDBTX(ctx, w.db).ExecContext(ctx, q, wl.IP, string(credentials), string(storage))
	if err != nil {
		return mapErr(err)
	}

	return nil
}

func (w workload) GetAll(ctx context.Context) (migration.Workloads, error) {
	const q = `SELECT ip, credentials, storage FROM workloads ORDER BY ip`

	rows, err := transaction.GetDBTX(ctx, w.db).QueryContext(ctx, q)
	if err != nil {
		return nil, mapErr(err)
	}

	defer func() { _ = rows.Close() }()

	var workloads migration.Workloads
	for rows.Next() {
		wl, err := scanWorkload(rows.Scan)
		if err != nil {
			return nil, err
		}

		workloads = append(workloads, wl)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return workloads, nil
}

func (w workload) GetAllIPs(ctx context.Context) ([]string, error) {
	const q = `SELECT ip FROM workloads ORDER BY ip`

	rows, err := transaction.GetDBTX(ctx, w.db).QueryContext(ctx, q)
	if err != nil {
		return nil, mapErr(err)
	}

	defer func() { _ = rows.Close() }()

	ips := []string{}
	for rows.Next() {
		var ip string
		err := rows.Scan(&ip)
		if err != nil {
			return nil, err
		}

		ips = append(ips, ip)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return ips, nil
}

func (w workload) GetByIP(ctx context.Context, ip string) (*migration.Workload, error) {
	const q = `SELECT ip, credentials, storage FROM workloads WHERE ip = ?`

	rows, err := transaction.GetDBTX(ctx, w.db).QueryContext(ctx, q, ip)
	if err != nil {
		return nil, mapErr(err)
	}

	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if rows.Err() != nil {
			return nil, rows.Err()
		}

		return nil, fmt.Errorf("Workload with IP %q: %w", ip, migration.ErrNotFound)
	}

	wl, err := scanWorkload(rows.Scan)
	if err != nil {
		return nil, err
	}

	return &wl, nil
}

func (w workload) Update(ctx context.Context, ip string, in migration.Workload) error {
	wl := in.ToAPI()

	credentials, err := json.Marshal(wl.Credentials)
	if err != nil {
		return err
	}

	storage, err := json.Marshal(wl.Storage)
	if err != nil {
		return err
	}

	const q = `UPDATE workloads SET credentials = ?, storage = ? WHERE ip = ?`

	result, err := transaction.GetDBTX(ctx, w.db).ExecContext(ctx, q, string(credentials), string(storage), ip)
	if err != nil {
		return mapErr(err)
	}

	affectedRows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return fmt.Errorf("Workload with IP %q: %w", ip, migration.ErrNotFound)
	}

	return nil
}

func (w workload) DeleteByIP(ctx context.Context, ip string) error {
	const q = `DELETE FROM workloads WHERE ip = ?`

	result, err := transaction.GetDBTX(ctx, w.db).ExecContext(ctx, q, ip)
	if err != nil {
		return mapErr(err)
	}

	affectedRows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affectedRows == 0 {
		return fmt.Errorf("Workload with IP %q: %w", ip, migration.ErrNotFound)
	}

	return nil
}

// scanWorkload reads one workloads row and rebuilds the domain workload from
// the JSON columns.
func scanWorkload(scan func(dest ...any) error) (migration.Workload, error) {
	var ip, credentials, storage string

	err := scan(&ip, &credentials, &storage)
	if err != nil {
		return migration.Workload{}, err
	}

	wl := api.Workload{IP: ip}

	err = json.Unmarshal([]byte(credentials), &wl.Credentials)
	if err != nil {
		return migration.Workload{}, err
	}

	err = json.Unmarshal([]byte(storage), &wl.Storage)
	if err != nil {
		return migration.Workload{}, err
	}

	return migration.WorkloadFromAPI(wl)
}
