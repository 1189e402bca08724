package commands

const (
	_etc = `C:\ProgramData\xml-creator`

	DEFAULT_CONFIG  = _etc + `\config.yml`
	DEFAULT_SERVER  = _etc + `\server.yml`
	DEFAULT_WORKDIR = _etc + `\var`
)
