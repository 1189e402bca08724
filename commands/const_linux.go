package commands

const (
	_etc = "/usr/local/etc/xml-creator"
	_var = "/usr/local/var/xml-creator"

	DEFAULT_CONFIG  = _etc + "/config.yml"
	DEFAULT_SERVER  = _etc + "/server.yml"
	DEFAULT_WORKDIR = _var
)
