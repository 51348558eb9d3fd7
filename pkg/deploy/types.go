package deploy

// Spec describes one deployment of the visualizer: which upstream publishers
// it subscribes to, how the visualizer itself is configured, and which
// container image carries it.
type Spec struct {
	Name       string            `yaml:"name" json:"name"`
	Namespace  string            `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Image      string            `yaml:"image,omitempty" json:"image,omitempty"`
	DevMode    bool              `yaml:"dev_mode" json:"dev_mode"`
	Upstream   Upstream          `yaml:"upstream" json:"upstream"`
	Visualizer Visualizer        `yaml:"visualizer" json:"visualizer"`
	Env        map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
}

// Upstream identifies the publisher replicas the visualizer subscribes to.
// PublishPort is the publish port of the first (or only) instance; instance i
// publishes on PublishPort+i.
type Upstream struct {
	Name        string `yaml:"name" json:"name"`
	Instances   int    `yaml:"instances" json:"instances"`
	PublishPort int    `yaml:"publish_port" json:"publish_port"`
}

// Visualizer carries the application-side options of the deployed container.
// Labels maps a stream topic to its label-id → display-text table.
type Visualizer struct {
	IPC       bool                         `yaml:"ipc" json:"ipc"`
	SocketDir string                       `yaml:"socket_dir,omitempty" json:"socket_dir,omitempty"`
	ImageDir  string                       `yaml:"image_dir,omitempty" json:"image_dir,omitempty"`
	SaveImage bool                         `yaml:"save_image" json:"save_image"`
	Labels    map[string]map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}
