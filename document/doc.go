// Copyright 2025 PlaybookWiz Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package document extracts page-attributed text and brand elements from
// uploaded playbook files.
//
// Supported formats are PDF, PPTX, DOCX, and plain text. The true format
// is determined by sniffing magic bytes rather than trusting the file
// extension or declared MIME type: a PDF starts with "%PDF-", OOXML
// containers are ZIP archives whose entries reveal whether they hold a
// presentation (ppt/) or a word document (word/).
//
// Extraction preserves page boundaries where the format has them: each
// PDF page and each PPTX slide becomes a Page, so downstream chunks can
// carry page numbers into source citations. DOCX and plain text have no
// page concept and yield a single Page.
package document
