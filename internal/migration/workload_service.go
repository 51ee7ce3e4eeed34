package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/FuturFusion/workload-migrator/internal/transaction"
)

type workloadService struct {
	repo WorkloadRepo
}

var _ WorkloadService = &workloadService{}

func NewWorkloadService(repo WorkloadRepo) workloadService {
	return workloadService{
		repo: repo,
	}
}

func (s workloadService) Create(ctx context.Context, workload Workload) (Workload, error) {
	err := workload.Validate()
	if err != nil {
		return Workload{}, err
	}

	err = transaction.Do(ctx, func(ctx context.Context) error {
		_, err := s.repo.GetByIP(ctx, workload.IP())
		if err == nil {
			return fmt.Errorf("Workload with IP %q is already registered: %w", workload.IP(), ErrConstraintViolation)
		}

		if !errors.Is(err, ErrNotFound) {
			return err
		}

		return s.repo.Create(ctx, workload)
	})
	if err != nil {
		return Workload{}, err
	}

	return workload, nil
}

func (s workloadService) GetAll(ctx context.Context) (Workloads, error) {
	return s.repo.GetAll(ctx)
}

func (s workloadService) GetAllIPs(ctx context.Context) ([]string, error) {
	return s.repo.GetAllIPs(ctx)
}

func (s workloadService) GetByIP(ctx context.Context, ip string) (*Workload, error) {
	if ip == "" {
		return nil, fmt.Errorf("Workload IP cannot be empty: %w", ErrOperationNotPermitted)
	}

	return s.repo.GetByIP(ctx, ip)
}

func (s workloadService) UpdateByIP(ctx context.Context, ip string, workload *Workload) error {
	if workload.IP() != ip {
		return fmt.Errorf("Cannot change IP address of workload %q: %w", ip, ErrOperationNotPermitted)
	}

	err := workload.Validate()
	if err != nil {
		return err
	}

	return s.repo.Update(ctx, ip, *workload)
}

func (s workloadService) DeleteByIP(ctx context.Context, ip string) error {
	if ip == "" {
		return fmt.Errorf("Workload IP cannot be empty: %w", ErrOperationNotPermitted)
	}

	return s.repo.DeleteByIP(ctx, ip)
}
