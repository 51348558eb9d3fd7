package store

// configKey is the etcd key the deployed container reads its config from.
func configKey(name string) string {
	return "/" + name + "/config"
}
