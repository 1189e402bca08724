package commands

const (
	_etc = "/usr/local/etc/com.github.xml-creator"
	_var = "/usr/local/var/com.github.xml-creator"

	DEFAULT_CONFIG  = _etc + "/config.yml"
	DEFAULT_SERVER  = _etc + "/server.yml"
	DEFAULT_WORKDIR = _var
)
