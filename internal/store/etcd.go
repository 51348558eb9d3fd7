package store

import (
	"context"
	"fmt"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
	"github.com/usingsystem/video-native-visualizer/pkg/deploy/codec"
)

// Etcd stores deployment specs in etcd at /<name>/config.
type Etcd struct {
	client *clientv3.Client
}

// NewEtcd connects to etcd.
func NewEtcd(endpoints []string) (*Etcd, error) {
	client, err := clientv3.New(clientv3.Config{
		Endpoints:   endpoints,
		DialTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("connect etcd: %w", err)
	}

	return &Etcd{client: client}, nil
}

func (s *Etcd) PutSpec(ctx context.Context, spec *deploy.Spec) error {
	if spec == nil || spec.Name == "" {
		return fmt.Errorf("deployment spec with a name is required")
	}

	data, err := codec.Encode(spec)
	if err != nil {
		return err
	}

	if _, err := s.client.Put(ctx, configKey(spec.Name), string(data)); err != nil {
		return fmt.Errorf("put %s: %w", configKey(spec.Name), err)
	}

	return nil
}

func (s *Etcd) GetSpec(ctx context.Context, name string) (*deploy.Spec, error) {
	resp, err := s.client.Get(ctx, configKey(name))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", configKey(name), err)
	}

	if resp.Count == 0 {
		return nil, fmt.Errorf("no config stored for %q", name)
	}

	return codec.Decode(resp.Kvs[0].Value)
}

func (s *Etcd) DeleteSpec(ctx context.Context, name string) error {
	if _, err := s.client.Delete(ctx, configKey(name)); err != nil {
		return fmt.Errorf("delete %s: %w", configKey(name), err)
	}

	return nil
}

func (s *Etcd) Close() error {
	return s.client.Close()
}
