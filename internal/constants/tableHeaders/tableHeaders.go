package tableHeaders

var DetectionTableHeaders = []string{"Package", "Version", "Source", "Status"}

var ExcelReportHeaders = []string{"Project", "Package", "Version", "Source", "Status"}
