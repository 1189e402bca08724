/*
Package creator converts a Google Sheets worksheet of media assets into an XML asset document and
uploads the document to an FTP server.

xml-creator can be used from the command line but is really intended to be run from a cron job to
publish the assets marked as rendered in a shared production worksheet.

xml-creator supports the following commands:

  - publish, to build the XML document from the worksheet and upload it to the FTP server
  - get, to build the XML document from the worksheet and store it to a local file
  - list, to display the worksheet rows that are ready to be published
*/
package creator
