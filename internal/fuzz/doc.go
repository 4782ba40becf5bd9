// Package fuzztests houses Go fuzz harnesses for the snippet pipeline
// (source -> lexer -> models -> result). Its goal is to smoke test
// robustness and guard against panics, NaN scores or lost bytes on arbitrary
// inputs.
//
// Назначение: прогонять произвольные байты через лексер и классификатор.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/lexer, internal/classifier, internal/corpus,
// internal/testkit.
package fuzztests
