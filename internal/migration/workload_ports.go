package migration

import "context"

type WorkloadService interface {
	Create(ctx context.Context, workload Workload) (Workload, error)
	GetAll(ctx context.Context) (Workloads, error)
	GetAllIPs(ctx context.Context) ([]string, error)
	GetByIP(ctx context.Context, ip string) (*Workload, error)
	UpdateByIP(ctx context.Context, ip string, workload *Workload) error
	DeleteByIP(ctx context.Context, ip string) error
}

//go:generate go run github.com/matryer/moq -fmt goimports -pkg mock -out repo/mock/workload_repo_mock_gen.go -rm . WorkloadRepo

type WorkloadRepo interface {
	Create(ctx context.Context, workload Workload) error
	GetAll(ctx context.Context) (Workloads, error)
	GetAllIPs(ctx context.Context) ([]string, error)
	GetByIP(ctx context.Context, ip string) (*Workload, error)
	Update(ctx context.Context, ip string, workload Workload) error
	DeleteByIP(ctx context.Context, ip string) error
}
