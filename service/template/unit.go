package template

// DockerTemplate is the document published for a template. It carries one
// entry per virtual environment.
type DockerTemplate struct {
	Name                string               `json:"name"`
	Description         string               `json:"description"`
	VirtualEnvironments []DockerTemplateUnit `json:"virtual_environments"`
}

// DockerTemplateUnit describes one container. Capitalised keys follow the
// docker remote API create-container body so the unit can be posted as is.
type DockerTemplateUnit struct {
	Provider    string      `json:"provider" validate:"oneof=docker"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Name        string      `json:"name" validate:"required,max=64"`
	Ports       []PortSpec  `json:"ports" validate:"dive"`
	Remote      *RemoteSpec `json:"remote,omitempty"`

	Hostname        string                 `json:"Hostname"`
	Domainname      string                 `json:"Domainname"`
	User            string                 `json:"User"`
	AttachStdin     bool                   `json:"AttachStdin"`
	AttachStdout    bool                   `json:"AttachStdout"`
	AttachStderr    bool                   `json:"AttachStderr"`
	Tty             bool                   `json:"Tty"`
	OpenStdin       bool                   `json:"OpenStdin"`
	StdinOnce       bool                   `json:"StdinOnce"`
	Env             []string               `json:"Env"`
	Cmd             []string               `json:"Cmd"`
	Entrypoint      string                 `json:"Entrypoint"`
	Image           string                 `json:"Image" validate:"required"`
	Labels          map[string]string      `json:"Labels"`
	Volumes         map[string]interface{} `json:"Volumes"`
	WorkingDir      string                 `json:"WorkingDir"`
	NetworkDisabled bool                   `json:"NetworkDisabled"`
	MacAddress      string                 `json:"MacAddress"`
	SecurityOpts    []string               `json:"SecurityOpts"`
	HostConfig      HostConfig             `json:"HostConfig"`
}

type PortSpec struct {
	Name     string `json:"name" validate:"required"`
	Port     int    `json:"port" validate:"min=1,max=65535"`
	Public   bool   `json:"public"`
	Protocol string `json:"protocol" validate:"oneof=tcp udp"`
	URL      string `json:"url,omitempty"`
}

type RemoteSpec struct {
	Provider string `json:"provider" validate:"oneof=guacamole"`
	Protocol string `json:"protocol" validate:"oneof=ssh rdp vnc telnet"`
	Username string `json:"username"`
	Password string `json:"password"`
	Port     int    `json:"port" validate:"min=1,max=65535"`
}

type HostConfig struct {
	Binds           []string               `json:"Binds"`
	Links           []string               `json:"Links"`
	LxcConf         map[string]string      `json:"LxcConf"`
	Memory          int64                  `json:"Memory" validate:"min=0"`
	MemorySwap      int64                  `json:"MemorySwap"`
	CpuShares       int64                  `json:"CpuShares" validate:"min=0"`
	CpusetCpus      string                 `json:"CpusetCpus"`
	PortBindings    map[string]interface{} `json:"PortBindings"`
	PublishAllPorts bool                   `json:"PublishAllPorts"`
	Privileged      bool                   `json:"Privileged"`
	ReadonlyRootfs  bool                   `json:"ReadonlyRootfs"`
	Dns             []string               `json:"Dns"`
	DnsSearch       []string               `json:"DnsSearch"`
	ExtraHosts      []string               `json:"ExtraHosts"`
	VolumesFrom     []string               `json:"VolumesFrom"`
	CapAdd          []string               `json:"CapAdd"`
	CapDrop         []string               `json:"CapDrop"`
	RestartPolicy   RestartPolicy          `json:"RestartPolicy"`
	NetworkMode     string                 `json:"NetworkMode"`
	Devices         []interface{}          `json:"Devices"`
	Ulimits         []interface{}          `json:"Ulimits"`
	LogConfig       LogConfig              `json:"LogConfig"`
	CgroupParent    string                 `json:"CgroupParent"`
}

type RestartPolicy struct {
	Name              string `json:"Name"`
	MaximumRetryCount int    `json:"MaximumRetryCount"`
}

type LogConfig struct {
	Type   string            `json:"Type"`
	Config map[string]string `json:"Config"`
}

func defaultUnit() DockerTemplateUnit {
	return DockerTemplateUnit{
		Provider:     "docker",
		AttachStdout: true,
		AttachStderr: true,
		Tty:          true,
		OpenStdin:    true,
		Env:          []string{},
		Cmd:          []string{},
		Labels:       map[string]string{},
		Volumes:      map[string]interface{}{},
		HostConfig: HostConfig{
			Binds:        []string{},
			Links:        []string{},
			LxcConf:      map[string]string{},
			PortBindings: map[string]interface{}{},
			Dns:          []string{},
			DnsSearch:    []string{},
			ExtraHosts:   []string{},
			VolumesFrom:  []string{},
			CapAdd:       []string{},
			CapDrop:      []string{},
			Devices:      []interface{}{},
			Ulimits:      []interface{}{},
			LogConfig:    LogConfig{Type: "json-file", Config: map[string]string{}},
		},
	}
}
