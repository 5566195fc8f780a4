// Package sample generates random landscapes for manual runs and tests.
package sample
