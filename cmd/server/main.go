package main

import "github.com/init-pkg/vapt-ingest/internal/bootstrap"

//	@title			VAPT ingest API
//	@version		1.0
//	@description	Uploads VAPT spreadsheet reports and serves the stored vulnerabilities.
//	@BasePath		/
func main() {
	bootstrap.Run()
}
